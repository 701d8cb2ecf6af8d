package models

import (
	"net/http"
	"time"
)

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// ResponseCurrentTime returns the current time in epoch milliseconds, which
// is what response envelopes carry.
func ResponseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// NewOKResponse wraps a data payload in a successful response envelope.
func NewOKResponse(data interface{}) ResponseModel {
	return ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        "OK",
		Version:     2,
	}
}
