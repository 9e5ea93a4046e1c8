package components

import "github.com/yohamta/donburi"

// BoxData is an element's laid-out rectangle in document coordinates
type BoxData struct {
	X, Y, W, H float64
}

var Box = donburi.NewComponentType[BoxData]()

// StyleData holds the writable visual properties of an element
type StyleData struct {
	TranslateX float64
	TranslateY float64
	Opacity    float64
}

var Style = donburi.NewComponentType[StyleData]()

// MemberData links an element to the element it is nested in. Translation
// and opacity of the owner apply to the member.
type MemberData struct {
	Owner *donburi.Entry
}

var Member = donburi.NewComponentType[MemberData]()
