package models

// PreviewSettings controls the home-page gallery preview. When UseLatest
// is set the preview is the Count most recently uploaded visible images;
// otherwise it is exactly SelectedImages, in order, filtered to images
// that are still visible.
type PreviewSettings struct {
	Count          int      `json:"count"`
	SelectedImages []string `json:"selectedImages"`
	UseLatest      bool     `json:"useLatest"`
}

// RSVPSettings gates RSVP submission. Deadline is a naive timestamp in
// Philippine local time (UTC+8), e.g. "2026-01-17T18:00".
type RSVPSettings struct {
	Enabled       bool   `json:"enabled"`
	Deadline      string `json:"deadline,omitempty"`
	CustomMessage string `json:"customMessage,omitempty"`
}

// UploadSettings gates guest photo uploads. When both ScheduleStart and
// ScheduleEnd are set, uploads are additionally restricted to that window.
type UploadSettings struct {
	Enabled       bool   `json:"enabled"`
	MaxPhotos     int    `json:"maxPhotos"`
	Message       string `json:"message,omitempty"`
	ScheduleStart string `json:"scheduleStart,omitempty"`
	ScheduleEnd   string `json:"scheduleEnd,omitempty"`
}

func DefaultPreviewSettings() PreviewSettings {
	return PreviewSettings{Count: 6, UseLatest: true}
}

func DefaultRSVPSettings() RSVPSettings {
	return RSVPSettings{Enabled: true}
}

func DefaultUploadSettings() UploadSettings {
	return UploadSettings{Enabled: true, MaxPhotos: 10}
}
