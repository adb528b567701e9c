package models

// WaitlistForm is the payload posted by either waitlist form instance.
type WaitlistForm struct {
	Email string `form:"email" json:"email"`
}

// WaitlistState is the visitor's shared draft and submission flag.
type WaitlistState struct {
	Draft     string `json:"draft"`
	Submitted bool   `json:"submitted"`
}
