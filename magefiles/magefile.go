//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the rolodex project using Mage.
//
// Usage:
//
//	mage build          Compile rolodex binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests with -short
//	mage test:cover     Run tests and write coverage.out
//	mage demo           Build and run the demonstration
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install rolodex to GOPATH/bin
package main

const (
	binGo      = "go"
	binaryName = "rolodex"
	binaryDir  = "bin"
	cmdDir     = "./cmd/rolodex"
)
