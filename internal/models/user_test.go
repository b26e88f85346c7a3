// internal/models/user_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndCheckPassword(t *testing.T) {
	user := &User{}
	require.NoError(t, user.SetPassword("password123"))

	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "password123", user.PasswordHash)

	assert.NoError(t, user.CheckPassword("password123"))
	assert.Error(t, user.CheckPassword("wrong-password"))
}

func TestUserJSONHidesPasswordHash(t *testing.T) {
	user := &User{Name: "John Doe", Email: "john@example.com"}
	require.NoError(t, user.SetPassword("password123"))

	data, err := json.Marshal(user)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.NotContains(t, fields, "passwordHash")
	assert.NotContains(t, fields, "password_hash")
	assert.Equal(t, "john@example.com", fields["email"])
}
