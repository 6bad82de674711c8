//go:build unit

package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTags(t *testing.T) {
	t.Run("installs every custom tag", func(t *testing.T) {
		v := validator.New()
		require.NoError(t, registerTags(v, customTags))

		assert.NoError(t, v.Var("09:30", "hhmm"))
		assert.Error(t, v.Var("9.30", "hhmm"))
		assert.NoError(t, v.Var("2025-06-02", "isodate"))
		assert.NoError(t, v.Var("approveOS", "approvalaction"))
		assert.Error(t, v.Var("root", "role"))
	})

	t.Run("reports the tag that failed", func(t *testing.T) {
		err := registerTags(validator.New(), map[string]func(string) error{
			"": func(string) error { return nil },
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), `register binding tag ""`)
	})
}
