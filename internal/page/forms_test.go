package page

import (
	"testing"
	"time"

	"beatsite/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactFormIncomplete(t *testing.T) {
	f := newFixture(t)

	for _, form := range []ContactForm{
		{},
		{Name: "Ada", Email: "ada@example.com"},
		{Name: "Ada", Email: "", Message: "hi"},
	} {
		err := f.ctrl.SubmitContact(form, nil)
		assert.ErrorIs(t, err, ErrIncompleteForm)
		n, ok := f.toast.Current()
		require.True(t, ok)
		assert.Equal(t, MsgFillAllFields, n.Message)
		assert.Equal(t, notify.Error, n.Level)
	}
	assert.False(t, f.ctrl.ContactBusy())
}

func TestContactFormWhitespaceIsContent(t *testing.T) {
	assert.True(t, ContactForm{Name: " ", Email: "\t", Message: "  "}.Complete())
	assert.False(t, ContactForm{Name: " ", Email: "", Message: "  "}.Complete())

	f := newFixture(t)
	require.NoError(t, f.ctrl.SubmitContact(ContactForm{Name: "   ", Email: "ada@example.com", Message: "hi"}, nil))
	assert.True(t, f.ctrl.ContactBusy())
}

func TestContactFormSuccessAfterDelay(t *testing.T) {
	f := newFixture(t)
	reset := false

	err := f.ctrl.SubmitContact(ContactForm{Name: "Ada", Email: "ada@example.com", Message: "Custom beat?"}, func() { reset = true })
	require.NoError(t, err)
	assert.True(t, f.ctrl.ContactBusy())

	assert.ErrorIs(t, f.ctrl.SubmitContact(ContactForm{Name: "A", Email: "b", Message: "c"}, nil), ErrBusy)

	f.sched.Advance(1999 * time.Millisecond)
	_, ok := f.toast.Current()
	assert.False(t, ok)
	assert.False(t, reset)

	f.sched.Advance(time.Millisecond)
	assert.True(t, reset)
	assert.False(t, f.ctrl.ContactBusy())
	assert.Equal(t, MsgMessageSent, f.toastMessage(t))
}

func TestBuyAndPreview(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.ctrl.Buy("Trap Beat #2"))
	assert.True(t, f.ctrl.ButtonBusy("buy", "Trap Beat #2"))
	assert.ErrorIs(t, f.ctrl.Buy("Trap Beat #2"), ErrBusy)

	f.sched.Advance(2 * time.Second)
	assert.False(t, f.ctrl.ButtonBusy("buy", "Trap Beat #2"))
	assert.Equal(t, MsgPurchaseSuccess, f.toastMessage(t))

	require.NoError(t, f.ctrl.Preview("Trap Beat #2"))
	f.sched.Advance(2 * time.Second)
	assert.Equal(t, MsgPreviewStarted, f.toastMessage(t))
}
