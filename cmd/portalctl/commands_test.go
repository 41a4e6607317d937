package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"institute-portal-backend/internal/service"
)

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"migrate"},
		{"seed"},
		{"create-admin"},
		{"import", "schools"},
		{"export", "payroll"},
	} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestRequiredFlags(t *testing.T) {
	rootCmd.SetArgs([]string{"export", "payroll", "--year", "2024"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"month" not set`)
}

func TestPrintImport(t *testing.T) {
	var buf bytes.Buffer
	printImport(&buf, &service.ImportResult{
		Total:      3,
		Inserted:   1,
		Duplicates: []service.ImportIssue{{Line: 2, Key: "12345678", Reason: "INEP already registered"}},
		Invalid:    []service.ImportIssue{{Line: 4, Key: "", Reason: "missing name"}},
	})
	assert.Equal(t, "rows: 3, inserted: 1, duplicates: 1, invalid: 1\n"+
		"  duplicate line 2 (12345678): INEP already registered\n"+
		"  invalid line 4 (): missing name\n", buf.String())
}

func TestReadAdminPassword(t *testing.T) {
	env := map[string]string{}
	getenv := func(k string) string { return env[k] }

	p, err := readAdminPassword(getenv, strings.NewReader("s3nha-forte\n"))
	require.NoError(t, err)
	assert.Equal(t, "s3nha-forte", p)

	p, err = readAdminPassword(getenv, strings.NewReader("sem-quebra"))
	require.NoError(t, err)
	assert.Equal(t, "sem-quebra", p)

	env[adminPasswordEnv] = "vinda-do-ambiente"
	p, err = readAdminPassword(getenv, strings.NewReader("ignorada\n"))
	require.NoError(t, err)
	assert.Equal(t, "vinda-do-ambiente", p)

	delete(env, adminPasswordEnv)
	_, err = readAdminPassword(getenv, strings.NewReader(""))
	assert.ErrorContains(t, err, adminPasswordEnv)
}

func TestCreateAdminHasNoPasswordFlag(t *testing.T) {
	assert.Nil(t, createAdminCmd.Flags().Lookup("password"))
}
