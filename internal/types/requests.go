package types

import "github.com/go-playground/validator/v10"

// EvaluateRequest is the request body for a full ATS evaluation.
type EvaluateRequest struct {
	ResumeText         string `json:"resumeText" validate:"required"`
	JobDescriptionText string `json:"jobDescriptionText" validate:"required"`
}

// ParseJDRequest is the request body for parsing a job description on its own.
type ParseJDRequest struct {
	RawText string `json:"rawText" validate:"required"`
}

// ParseResumeRequest is the request body for parsing a resume on its own.
type ParseResumeRequest struct {
	Text string `json:"text" validate:"required"`
}

// Validate validates the EvaluateRequest using the validator.
func (r *EvaluateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ParseJDRequest using the validator.
func (r *ParseJDRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ParseResumeRequest using the validator.
func (r *ParseResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
