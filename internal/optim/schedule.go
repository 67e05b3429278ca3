package optim

// Schedule maps a step index to a learning rate.
type Schedule interface {
	LR(step int) float64
}

// Constant always returns the same learning rate.
type Constant float64

// LR implements Schedule.
func (c Constant) LR(int) float64 { return float64(c) }

// LinearDecay interpolates from Start at step 0 towards End at step Steps:
//
//	lr(k) = Start - (Start-End) * k / Steps
//
// With Start=1, End=0.1 this is the classic 1.0 - 0.9*k/Steps decay. Steps
// past the end return End; Steps <= 0 returns Start.
type LinearDecay struct {
	Start float64
	End   float64
	Steps int
}

// LR implements Schedule.
func (d LinearDecay) LR(step int) float64 {
	if d.Steps <= 0 {
		return d.Start
	}
	if step >= d.Steps {
		return d.End
	}
	return d.Start - (d.Start-d.End)*float64(step)/float64(d.Steps)
}
