package model

// ActionKind enumerates the UI side effects a response can request.
type ActionKind string

const (
	ActionNavigate ActionKind = "navigate"
	ActionFocus    ActionKind = "focus"
	ActionScroll   ActionKind = "scroll"
	ActionShow     ActionKind = "show"
)

// Action is the closed union of side effects a response may carry. Navigate
// actions set Screen; the other kinds set Target.
type Action struct {
	Kind   ActionKind `json:"type"`
	Screen ScreenID   `json:"screen,omitempty"`
	Target string     `json:"target,omitempty"`
}

// NavigateTo builds a navigation action for the given screen.
func NavigateTo(screen ScreenID) *Action {
	return &Action{Kind: ActionNavigate, Screen: screen}
}

// FocusOn builds a focus action for the given UI target.
func FocusOn(target string) *Action {
	return &Action{Kind: ActionFocus, Target: target}
}

// ScrollTo builds a scroll action for the given UI target.
func ScrollTo(target string) *Action {
	return &Action{Kind: ActionScroll, Target: target}
}

// ShowTarget builds a show action for the given UI target.
func ShowTarget(target string) *Action {
	return &Action{Kind: ActionShow, Target: target}
}

// ResponseSource names the resolution tier that produced a response.
type ResponseSource string

const (
	SourcePreloaded ResponseSource = "preloaded"
	SourceCache     ResponseSource = "cache"
	SourceRemote    ResponseSource = "remote"
	SourceFallback  ResponseSource = "fallback"
)

// ResponseMeta records how a response was resolved. Source is set exactly
// once by the tier that produced the response and never relabeled.
type ResponseMeta struct {
	Instant bool           `json:"instant"`
	Cached  bool           `json:"cached"`
	Source  ResponseSource `json:"source"`
}

// Response is the uniform output contract of every resolution tier.
type Response struct {
	Kind        string       `json:"kind"`
	Title       string       `json:"title"`
	Message     string       `json:"message"`
	Action      *Action      `json:"action,omitempty"`
	Suggestions []string     `json:"suggestions"`
	Meta        ResponseMeta `json:"metadata"`
}
