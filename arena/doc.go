// SPDX-License-Identifier: MIT

// Package arena provides Store, a sparse handle-indexed record array.
//
// The topology engine keeps one Store for node records and one for edge
// records. Intrusive list links inside those records are plain handles, so
// link/unlink stays O(1) without pointers between records. Absence beyond
// the allocated capacity is reported, not faulted, which makes existence
// probes on arbitrary handles cheap.
package arena
