// SPDX-License-Identifier: MIT
// Package imatrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for the matrix tests.
//   - Keep every fixture finite and rectangular unless a test says otherwise.

package imatrix_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/katalvlaran/greyscale/imatrix"
)

// itoa is shorthand for strconv.Itoa in fixture builders.
func itoa(v int) string { return strconv.Itoa(v) }

// writeFile creates name under a fresh temp dir with body and returns its path.
func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	return path
}

// mustFromSamples builds a matrix or fails the test.
func mustFromSamples[T imatrix.Sample](t *testing.T, samples [][]T, maxValue int) *imatrix.ImageMatrix[T] {
	t.Helper()
	m, err := imatrix.FromSamples(samples, maxValue)
	if err != nil {
		t.Fatalf("FromSamples: %v", err)
	}

	return m
}

// randomMatrix builds a deterministic matrix of 1..16 × 1..16 samples in
// [0, maxValue] from seed.
func randomMatrix(t *testing.T, seed int64) *imatrix.ImageMatrix[int32] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	w, h := 1+rng.Intn(16), 1+rng.Intn(16)
	maxValue := 1 + rng.Intn(65535)

	rows := make([][]int32, h)
	for i := range rows {
		rows[i] = make([]int32, w)
		for j := range rows[i] {
			rows[i][j] = int32(rng.Intn(maxValue + 1))
		}
	}

	return mustFromSamples(t, rows, maxValue)
}
