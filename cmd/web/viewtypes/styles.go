package viewtypes

// Shared CSS class names used across multiple template files, so page and
// fragment templates stay in sync with static/dist/main.css.

// KindBadge marks the recording kind chip on cards and detail pages.
var KindBadge = "kind-badge"

// RecordingCard is the card container on the index grid and home page.
var RecordingCard = "recording-card"

// SkeletonCard is the placeholder slot replaced by SSE patches.
var SkeletonCard = "recording-card skeleton"

// DangerButton is the outlined destructive-action button.
var DangerButton = "danger"
