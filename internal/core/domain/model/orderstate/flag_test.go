package orderstate_test

import (
	"strings"
	"testing"

	"backoffice/internal/core/domain/model/orderstate"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlag(t *testing.T) {
	for _, flag := range orderstate.AllFlags() {
		t.Run(flag.String(), func(t *testing.T) {
			parsed, err := orderstate.ParseFlag(flag.String())

			require.NoError(t, err)
			assert.Equal(t, flag, parsed)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := orderstate.ParseFlag("refunded")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestFlag_IsToggleable(t *testing.T) {
	var toggleable []orderstate.Flag
	for _, flag := range orderstate.AllFlags() {
		if flag.IsToggleable() {
			toggleable = append(toggleable, flag)
		}
	}

	assert.ElementsMatch(t, []orderstate.Flag{orderstate.Delivery, orderstate.Invoice, orderstate.SendEmail}, toggleable)
}

func TestFlags(t *testing.T) {
	fs := orderstate.NewFlags(orderstate.Paid, orderstate.FlagUnknown, orderstate.Delivery)

	assert.True(t, fs.Has(orderstate.Paid))
	assert.True(t, fs.Has(orderstate.Delivery))
	assert.False(t, fs.Has(orderstate.FlagUnknown))
	assert.Equal(t, []orderstate.Flag{orderstate.Paid, orderstate.Delivery}, fs.List())

	off := fs.With(orderstate.Paid, false)
	assert.False(t, off.Has(orderstate.Paid))
	assert.True(t, fs.Has(orderstate.Paid), "With returns a copy")

	assert.Equal(t, fs, fs.With(orderstate.Flag(99), true))
}

func TestIsTemplateName(t *testing.T) {
	assert.True(t, orderstate.IsTemplateName(""))
	assert.True(t, orderstate.IsTemplateName("order_canceled"))
	assert.True(t, orderstate.IsTemplateName("bankwire-2"))
	assert.False(t, orderstate.IsTemplateName("../payment"))
	assert.False(t, orderstate.IsTemplateName("pay ment"))
	assert.True(t, orderstate.IsTemplateName(strings.Repeat("a", orderstate.TemplateNameMaxLength)))
	assert.False(t, orderstate.IsTemplateName(strings.Repeat("a", orderstate.TemplateNameMaxLength+1)))
}
