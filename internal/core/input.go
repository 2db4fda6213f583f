package core

// Axis identifies one joystick axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Raw axis range as delivered by a 10-bit ADC.
const (
	AxisMin    = 0
	AxisMax    = 1023
	AxisCenter = 512
)

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return "Unknown"
	}
}

// Intent is the two-level reading of an analog axis.
type Intent int

const (
	IntentNeutral  Intent = iota
	IntentNegative        // reading below the low threshold
	IntentPositive        // reading above the high threshold
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNeutral:
		return "Neutral"
	case IntentNegative:
		return "Negative"
	case IntentPositive:
		return "Positive"
	default:
		return "Unknown"
	}
}

// Thresholds are the low/high cutoffs mapping an axis reading to an Intent.
// Readings in [Low, High] are neutral.
type Thresholds struct {
	Low  int
	High int
}

// DefaultThresholds returns the stock 400/600 cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{Low: 400, High: 600}
}

// Intent classifies a raw axis value.
func (t Thresholds) Intent(v int) Intent {
	switch {
	case v < t.Low:
		return IntentNegative
	case v > t.High:
		return IntentPositive
	default:
		return IntentNeutral
	}
}

// InputFrame is the controller state sampled once at the start of a frame.
type InputFrame struct {
	X      int  // Raw horizontal axis
	Y      int  // Raw vertical axis
	Button bool // Button held
}

// NeutralFrame returns a frame with the stick centred and the button up.
func NeutralFrame() InputFrame {
	return InputFrame{X: AxisCenter, Y: AxisCenter}
}

// Sample reads both axes and the button from src.
func Sample(src InputSource) InputFrame {
	return InputFrame{
		X:      src.ReadAxis(AxisX),
		Y:      src.ReadAxis(AxisY),
		Button: src.ReadButton(),
	}
}

// Horizontal returns the two-level intent of the X axis.
func (f InputFrame) Horizontal(t Thresholds) Intent {
	return t.Intent(f.X)
}

// Vertical returns the two-level intent of the Y axis.
func (f InputFrame) Vertical(t Thresholds) Intent {
	return t.Intent(f.Y)
}
