// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

type Recommendation struct {
	RecommendationId int64  `json:"recommendation_id"`
	Type             string `json:"type"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	TargetId         int64  `json:"target_id,omitempty"`
	Priority         int    `json:"priority"`
	ActionText       string `json:"action_text"`
	ActionUrl        string `json:"action_url"`
}

type RecommendationList struct {
	Recommendations []Recommendation `json:"recommendations"`
}

type ActReq struct {
	RecommendationId int64 `json:"recommendation_id"`
}
