package fetch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fjacquet/bank-ledger/cmd/fetch"
)

func TestFetchCommand_Metadata(t *testing.T) {
	assert.Equal(t, "fetch", fetch.Cmd.Use)
	assert.Contains(t, fetch.Cmd.Short, "ledger")
	assert.NotNil(t, fetch.Cmd.Run)
}

func TestFetchCommand_OutputFlag(t *testing.T) {
	flag := fetch.Cmd.Flags().Lookup("output")
	assert.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
}
