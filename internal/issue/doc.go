// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context (ActionableError) and a
// catalog of rendered help cards for the failures users hit most often.
package issue
