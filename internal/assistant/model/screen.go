package model

// ScreenID identifies a navigable screen. The enumeration is owned by the
// navigation layer; the engine only references the values.
type ScreenID string

const (
	ScreenHome           ScreenID = "HomeMain"
	ScreenEventBooking   ScreenID = "EventBooking"
	ScreenBarMenu        ScreenID = "BarMenu"
	ScreenWallet         ScreenID = "Wallet"
	ScreenExplore        ScreenID = "Explore"
	ScreenDashboard      ScreenID = "M1ADashboard"
	ScreenAutoPoster     ScreenID = "AutoPoster"
	ScreenProfile        ScreenID = "ProfileMain"
	ScreenProfileEdit    ScreenID = "ProfileEdit"
	ScreenSettings       ScreenID = "M1ASettings"
	ScreenHelp           ScreenID = "Help"
	ScreenMessages       ScreenID = "Messages"
	ScreenServiceBooking ScreenID = "ServiceBooking"
	ScreenCalendar       ScreenID = "Calendar"
)

// String returns the string representation of the screen identifier.
func (s ScreenID) String() string {
	return string(s)
}
