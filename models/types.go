// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Likert scale bounds
const (
	ScaleMin     = 1
	ScaleMax     = 7
	ScaleNeutral = 4
)

// Question category constants
const (
	CategorySocial    = "social"
	CategoryLifestyle = "lifestyle"
	CategoryOpinions  = "opinions"
)

// Stance labels derived from a raw answer value
type Stance string

const (
	StanceStronglyAgree    Stance = "strongly_agree"
	StanceAgree            Stance = "agree"
	StanceNeutral          Stance = "neutral"
	StanceDisagree         Stance = "disagree"
	StanceStronglyDisagree Stance = "strongly_disagree"
)

// Response source constants
const (
	SourceWeb         = "web"
	SourceGoogleForms = "google_forms"
)

// QuestionnaireVersion is stored with every submission
const QuestionnaireVersion = 1

// Request types

type RegisterUserRequest struct {
	DisplayName string `json:"display_name"`
}

type SubmitResponsesRequest struct {
	Answers []Answer `json:"answers"`
	Source  string   `json:"source,omitempty"`
}

// Response types

type RegisterUserResponse struct {
	UserID    string `json:"user_id"`
	UserToken string `json:"user_token"`
}

type SubmitResponsesResponse struct {
	AnswerCount  int                 `json:"answer_count"`
	IsRetake     bool                `json:"is_retake"`
	Neighborhood NeighborhoodProfile `json:"neighborhood"`
	Message      string              `json:"message"`
}

type MyResponsesResponse struct {
	Answers     []Answer  `json:"answers"`
	Source      string    `json:"source"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type HotTakesResponse struct {
	HotTakes []HotTake `json:"hot_takes"`
}

type OutliersResponse struct {
	Outliers  []OutlierAnswer `json:"outliers"`
	MinSample int             `json:"min_sample"`
}

type DistributionResponse struct {
	QuestionID   int                    `json:"question_id"`
	QuestionText string                 `json:"question_text"`
	Distribution []ResponseDistribution `json:"distribution"`
}

// AdminUsersResponse is one page of the admin user list, newest first
type AdminUsersResponse struct {
	Users  []User `json:"users"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

type UserStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// Domain types

type Question struct {
	ID            int    `json:"id" yaml:"id"`
	Text          string `json:"text" yaml:"text"`
	Category      string `json:"category" yaml:"category"`
	ScaleMinLabel string `json:"scale_min_label" yaml:"scale_min_label"`
	ScaleMaxLabel string `json:"scale_max_label" yaml:"scale_max_label"`
	Order         int    `json:"order" yaml:"order"`
}

type Answer struct {
	QuestionID int `json:"question_id"`
	Value      int `json:"value"` // 1-7
}

// AnswerSet holds at most one Answer per question for a single user
type AnswerSet []Answer

type HotTake struct {
	QuestionID   int    `json:"question_id"`
	QuestionText string `json:"question_text"`
	Value        int    `json:"value"`
	Intensity    int    `json:"intensity"` // |value - 4|, 0-3
	Stance       Stance `json:"stance"`
}

// QuestionStatistics is the full-batch reduction of every answer to one question.
// Counts[v-1] holds the number of responses with value v.
type QuestionStatistics struct {
	QuestionID int     `json:"question_id"`
	Count      int     `json:"response_count"`
	Mean       float64 `json:"mean_value"`
	StdDev     float64 `json:"std_dev"`
	P10        int     `json:"percentile_10"`
	P25        int     `json:"percentile_25"`
	P50        int     `json:"percentile_50"`
	P75        int     `json:"percentile_75"`
	P90        int     `json:"percentile_90"`
	Min        int     `json:"min_value"`
	Max        int     `json:"max_value"`
	Counts     [7]int  `json:"counts"`
}

type ResponseDistribution struct {
	Value      int     `json:"value"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type OutlierAnswer struct {
	QuestionID      int     `json:"question_id"`
	QuestionText    string  `json:"question_text"`
	UserValue       int     `json:"user_value"`
	PopulationMean  float64 `json:"population_mean"`
	StdDev          float64 `json:"std_dev"`
	PercentileRank  float64 `json:"percentile_rank"` // 0-100
	IsTopOutlier    bool    `json:"is_top_outlier"`
	IsBottomOutlier bool    `json:"is_bottom_outlier"`
	ResponseCount   int     `json:"response_count"`
	Label           string  `json:"label"`
}

// TraitVector is a point in the (progressive, artistic, social) space, each 0-100
type TraitVector struct {
	Progressive float64 `json:"progressive" yaml:"progressive"`
	Artistic    float64 `json:"artistic" yaml:"artistic"`
	Social      float64 `json:"social" yaml:"social"`
}

type NeighborhoodProfile struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Traits      []string    `json:"traits" yaml:"traits"`
	Vibe        string      `json:"vibe" yaml:"vibe"`
	Reference   TraitVector `json:"reference" yaml:"reference"`
}

type NeighborhoodResult struct {
	Neighborhood NeighborhoodProfile `json:"neighborhood"`
	Dimensions   TraitVector         `json:"dimensions"`
}

type DisagreementScore struct {
	UserID     string `json:"user_id"`
	Percentage int    `json:"percentage"` // 0-100
	Comment    string `json:"comment"`
}

type User struct {
	ID                        string    `json:"id"`
	DisplayName               string    `json:"display_name"`
	HasCompletedQuestionnaire bool      `json:"has_completed_questionnaire"`
	NeighborhoodID            *string   `json:"neighborhood_id,omitempty"`
	CreatedAt                 time.Time `json:"created_at"`
}

// StatisticsSnapshot is one stored run of the population aggregation
type StatisticsSnapshot struct {
	ID            string               `json:"id"`
	ComputedAt    time.Time            `json:"computed_at"`
	ResponseCount int                  `json:"response_count"`
	InputsHash    string               `json:"inputs_hash"` // Hash of all contributing user IDs and submit times
	Statistics    []QuestionStatistics `json:"statistics"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
