package exercise

// classify derives the form verdict and suggestion for the current angle
// from the profile's band rules. Rules are checked top to bottom and the
// first match wins; when nothing matches the profile default applies.
func classify(p Profile, angle float64) Feedback {
	for _, rule := range p.Rules {
		if angle > rule.Min && angle < rule.Max {
			return rule.Feedback
		}
	}
	return p.Default
}

// normalize maps the angle linearly from [low, high] onto [0, 100].
// The mapping is not clamped: angles outside the configured
// range extrapolate past 0 or 100, so only the exact extremes produce the
// exact trigger values used by the rep counter.
func normalize(angle, low, high float64) float64 {
	if high == low {
		return 0
	}
	return (angle - low) / (high - low) * 100
}
