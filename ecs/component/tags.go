package component

type CharacterTag struct{}

var CharacterTagComponent = NewComponent[CharacterTag]()

type BackgroundTag struct{}

var BackgroundTagComponent = NewComponent[BackgroundTag]()
