// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value, ok := reader.LookupEnv("MY_VAR")

LookupEnv reports presence separately from the value, so a variable that is
set to the empty string can be told apart from one that is not set at all.

# Testing

The Reader interface allows injecting a mock in tests to avoid relying on
real environment variables. A generated mock is available in the mocks
sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().LookupEnv("MY_VAR").Return("test-value", true)

	result := myFunc(mock)
*/
package env
