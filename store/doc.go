/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package store holds the normalized entity collections served by staffgraph.
//
// Skills, employees and projects live in three homogeneous collections. An entity is addressed by
// its 0-based position in its collection and the decimal form of that position is its external
// identifier. Employees and projects never embed other entities; they hold references (positions)
// into the skill and employee collections instead.
//
// A Store is produced by a Builder, which is the only writer. The Builder rejects any reference
// whose target has not been added yet, so every reference held by a built Store is valid for the
// life of the Store. Collections are append-only and a Store is immutable once built, which makes
// it safe for concurrent readers without locking.
package store
