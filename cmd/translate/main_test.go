package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateLinesPreservesOrder(t *testing.T) {
	in := strings.NewReader("namaste\nraam\nshri\n")
	var out bytes.Buffer

	require.NoError(t, translateLines(in, &out, 4))
	assert.Equal(t, "नमस्ते\nराम\nश्री\n", out.String())
}

func TestTranslateLinesEmptyInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, translateLines(strings.NewReader(""), &out, 2))
	assert.Equal(t, "", out.String())
}

func TestTranslateLinesSingleWorker(t *testing.T) {
	in := strings.NewReader("tum kahaaM jaa rahe ho?\n\n1234\n")
	var out bytes.Buffer

	require.NoError(t, translateLines(in, &out, 1))
	assert.Equal(t, "तुम कहाँ जा रहे हो?\n\n1234\n", out.String())
}
