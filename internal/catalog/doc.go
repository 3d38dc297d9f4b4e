// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog loads and parses the product catalog.
//
// The source is a pipe-delimited, markdown-table-like text document.
// Parsing turns each data row into an immutable Product record with
// derived price, description, and search keywords. The Loader fetches
// the document from an HTTP URL or a local file and can watch a file
// source for changes.
package catalog
