package flow

// MaxStars is the top of the rating scale.
const MaxStars = 5

// RatingForm is the end-of-stay review state.
type RatingForm struct {
	Stars     int
	Review    string
	Favorite  bool
	Submitted bool
}

// SetStars accepts 1..MaxStars and ignores anything else.
func (r *RatingForm) SetStars(n int) {
	if n < 1 || n > MaxStars {
		return
	}
	r.Stars = n
}

func (r *RatingForm) ToggleFavorite() { r.Favorite = !r.Favorite }

// CanSubmit reports whether a star rating was chosen.
func (r RatingForm) CanSubmit() bool {
	return !r.Submitted && r.Stars >= 1 && r.Stars <= MaxStars
}

// Submit flips the form into its thank-you state.
func (r *RatingForm) Submit() bool {
	if !r.CanSubmit() {
		return false
	}
	r.Submitted = true
	return true
}
