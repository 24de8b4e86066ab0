package main

import (
	"fmt"
	"testing"

	"attriview/pkg/parser"
	"attriview/pkg/schema"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitDataUnavailable,
		exitCode(fmt.Errorf("load: %w", parser.ErrDataUnavailable)))
	assert.Equal(t, exitSchemaMismatch,
		exitCode(fmt.Errorf("check: %w", schema.ErrSchemaMismatch)))
	assert.Equal(t, exitUnmappedCode,
		exitCode(fmt.Errorf("recode: %w", schema.ErrUnmappedCode)))
	assert.Equal(t, exitError, exitCode(fmt.Errorf("anything else")))
}
