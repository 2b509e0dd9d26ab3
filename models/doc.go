// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterUserRequest: display_name
  - SubmitResponsesRequest: answers ([]Answer), source

# Response Types

Types for JSON responses:

  - RegisterUserResponse: user_id, user_token
  - SubmitResponsesResponse: answer_count, is_retake, neighborhood, message
  - HotTakesResponse, OutliersResponse, DistributionResponse
  - UserStats: total, completed
  - ErrorResponse: error, message

# Domain Types

Values produced and consumed by the scoring engine:

  - Question: one Likert statement of the catalog
  - Answer / AnswerSet: a user's 1-7 responses
  - HotTake: a strong opinion with intensity and stance
  - QuestionStatistics: mean, std dev, percentiles, histogram per question
  - ResponseDistribution: count and share of each scale value
  - OutlierAnswer: an answer in the top or bottom decile of the population
  - NeighborhoodProfile / TraitVector: personality reference points
  - DisagreementScore: share of answers far from the population mean
  - StatisticsSnapshot: stored result of one population aggregation

# Constants

Scale bounds:

	ScaleMin     = 1
	ScaleMax     = 7
	ScaleNeutral = 4

Categories:

	CategorySocial    = "social"
	CategoryLifestyle = "lifestyle"
	CategoryOpinions  = "opinions"

Stances:

	StanceStronglyAgree, StanceAgree, StanceNeutral,
	StanceDisagree, StanceStronglyDisagree
*/
package models
