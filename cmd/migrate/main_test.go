package main

import (
	"bytes"
	"testing"

	"orderdesk/internal/adapters/out/gormdb/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintState(t *testing.T) {
	var out bytes.Buffer
	state := migrations.State{
		Applied: []string{"001_init_core_tables", "002_delivery_queue_index"},
		Pending: []string{"003_next"},
	}

	err := printState(&out, "sqlite", state, []string{"002_delivery_queue_index"})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "driver: sqlite")
	assert.Contains(t, text, "001_init_core_tables")
	assert.Contains(t, text, "applied now")
	assert.Contains(t, text, "003_next")
	assert.Contains(t, text, "pending")
}
