// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package recommend extracts structured product recommendations from
// free-text model replies. The model signals a recommendation with an
// inline tag of the exact shape
//
//	<product-card data-id="product_N"></product-card>
//
// and the parser resolves each tag against the catalog, splitting the
// reply into lead-in text, resolved products, and a fixed trailing
// refinement prompt.
package recommend
