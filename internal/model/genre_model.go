package model

type Genre struct {
	ID   int64
	Name string
}
