package model

// PromptID keys an image in the external prompt asset store.
type PromptID int
