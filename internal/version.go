package internal

// Version is the current tangocards release.
const Version = "0.3.0"
