package model

type Notification struct {
	Url     string
	Message string
}
