package countdown

import "time"

// Toggle button labels.
const (
	LabelStart = "START"
	LabelPause = "PAUSE"
)

// ViewModel is everything a UI needs to draw the timer.
type ViewModel struct {
	Minutes        string
	Seconds        string
	Separator      string
	SeparatorAlpha float64
	Toggle         string
	ResetEnabled   bool
	InputsEnabled  bool
	MinutesInput   string
	SecondsInput   string
	Notice         string
}

// Project maps a state to its view. blink is the time elapsed in the
// separator animation; the separator only blinks while Running.
func Project(st State, blink time.Duration) ViewModel {
	vm := ViewModel{
		Separator:      Separator,
		SeparatorAlpha: 1,
		Toggle:         LabelStart,
		ResetEnabled:   st.ResetEnabled,
		InputsEnabled:  st.Phase == Idle,
		MinutesInput:   st.Minutes.Text,
		SecondsInput:   st.Seconds.Text,
		Notice:         st.Notice,
	}

	switch st.Phase {
	case Running, Paused:
		total := int(st.Remaining / time.Second)
		vm.Minutes, vm.Seconds = Pad(total/60), Pad(total%60)
	default:
		vm.Minutes, vm.Seconds = Digits(st.Minutes.Text), Digits(st.Seconds.Text)
	}

	if st.Phase == Running {
		vm.Toggle = LabelPause
		vm.SeparatorAlpha = SeparatorAlpha(blink)
	}
	return vm
}
