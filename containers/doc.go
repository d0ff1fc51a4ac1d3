// Copyright 2026 Kvist Exercises. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package containers provides small generic container reimplementations:
// a fixed-capacity Array, a dynamic Vector and a doubly linked List.
//
// Operations that can fail (out-of-range access, popping an empty
// container) return explicit errors instead of panicking.
package containers
