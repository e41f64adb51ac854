package dto

import "time"

type UploadResponse struct {
	Message  string `json:"message"`
	FilePath string `json:"filePath"`
}

type ResumeUploadResponse struct {
	Message  string `json:"message"`
	FilePath string `json:"filePath"`
	Filename string `json:"filename"`
}

type ResumeInfo struct {
	Exists     bool       `json:"exists"`
	Filename   string     `json:"filename,omitempty"`
	FilePath   string     `json:"filePath,omitempty"`
	Size       int64      `json:"size,omitempty"`
	UploadedAt *time.Time `json:"uploadedAt,omitempty"`
}
