package components

import "github.com/yohamta/donburi"

type NameData struct {
	Name string
}

var Name = donburi.NewComponentType[NameData]()

// ParentData points at the owning entity.
type ParentData struct {
	Entry *donburi.Entry
}

var Parent = donburi.NewComponentType[ParentData]()
