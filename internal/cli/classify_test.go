package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietddude/rpcdispatch/internal/server"
)

func TestPrintClassification(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printClassification(&buf, server.Classification{
		Kind:        "flood_wait",
		Code:        420,
		Identifier:  "FLOOD_WAIT_30",
		Method:      "messages.sendMessage",
		Description: "Please wait 30 seconds before repeating the action.",
		WaitSeconds: 30,
		GRPCCode:    "ResourceExhausted",
	}))

	out := buf.String()
	assert.Contains(t, out, "flood_wait")
	assert.Contains(t, out, "FLOOD_WAIT_30 (420) in messages.sendMessage")
	assert.Contains(t, out, "30s")
	assert.NotContains(t, out, "DATACENTER")
}

func TestClassifyCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"classify", "USER_MIGRATE_3", "--code", "303", "--method", "auth.sendCode"})
	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "migrate")
	assert.Contains(t, out, "USER_MIGRATE_3 (303) in auth.sendCode")
	assert.Contains(t, out, "DATACENTER")
}
