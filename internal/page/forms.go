package page

import "beatsite/internal/notify"

// Contact form and button messages.
const (
	MsgFillAllFields   = "Please fill in all fields."
	MsgMessageSent     = "Message sent successfully! We'll get back to you soon."
	MsgPurchaseSuccess = "Purchase successful!"
	MsgPreviewStarted  = "Preview started!"
)

// ContactForm is the page's contact form. Nothing is delivered anywhere.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Complete reports whether every field is non-empty. Blank text counts as content,
// the same as the browser form.
func (f ContactForm) Complete() bool {
	return f.Name != "" && f.Email != "" && f.Message != ""
}

// SubmitContact validates f and, if complete, shows the success toast after
// ProcessingDelay. done is called (may be nil) once processing finishes so the host can
// reset the form.
func (c *Controller) SubmitContact(f ContactForm, done func()) error {
	if !f.Complete() {
		c.notifier.Show(MsgFillAllFields, notify.Error)
		return ErrIncompleteForm
	}

	c.mu.Lock()
	if c.contactBusy {
		c.mu.Unlock()
		return ErrBusy
	}
	c.contactBusy = true
	c.mu.Unlock()

	c.sched.AfterFunc(ProcessingDelay, func() {
		c.mu.Lock()
		c.contactBusy = false
		c.mu.Unlock()
		if done != nil {
			done()
		}
		c.notifier.Show(MsgMessageSent, notify.Success)
	})
	return nil
}

// ContactBusy reports whether a contact submission is processing.
func (c *Controller) ContactBusy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.contactBusy
}

// Buy runs the mocked purchase of the named beat.
func (c *Controller) Buy(title string) error {
	return c.press("buy:"+title, MsgPurchaseSuccess)
}

// Preview runs the mocked preview of the named beat.
func (c *Controller) Preview(title string) error {
	return c.press("preview:"+title, MsgPreviewStarted)
}

// ButtonBusy reports whether the buy or preview button for title is processing.
func (c *Controller) ButtonBusy(action, title string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buttonBusy[action+":"+title]
}

func (c *Controller) press(key, message string) error {
	c.mu.Lock()
	if c.buttonBusy[key] {
		c.mu.Unlock()
		return ErrBusy
	}
	c.buttonBusy[key] = true
	c.mu.Unlock()

	c.sched.AfterFunc(ProcessingDelay, func() {
		c.mu.Lock()
		delete(c.buttonBusy, key)
		c.mu.Unlock()
		c.notifier.Show(message, notify.Success)
	})
	return nil
}
