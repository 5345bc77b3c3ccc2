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

type Certificate struct {
	CertificateId     int64  `json:"certificate_id"`
	CourseId          int64  `json:"course_id"`
	CourseName        string `json:"course_name"`
	CertificateType   string `json:"certificate_type"`
	CertificateNumber string `json:"certificate_number"`
	IssueDate         string `json:"issue_date"`
	CertificateUrl    string `json:"certificate_url"`
	VerificationCode  string `json:"verification_code"`
	IsShareable       bool   `json:"is_shareable"`
}

type CertificateList struct {
	Certificates []Certificate `json:"certificates"`
}

type VerifyReq struct {
	VerificationCode string `json:"verification_code"`
}

type VerifyResp struct {
	IsValid           bool   `json:"is_valid"`
	CertificateNumber string `json:"certificate_number,omitempty"`
	CourseName        string `json:"course_name,omitempty"`
	CertificateType   string `json:"certificate_type,omitempty"`
	IssueDate         string `json:"issue_date,omitempty"`
	Uid               int64  `json:"user_id,omitempty"`
	UserName          string `json:"user_name,omitempty"`
}

type GenerateReq struct {
	CourseId        int64  `json:"course_id"`
	CertificateType string `json:"certificate_type"`
}

type GenerateResp struct {
	CertificateId     int64  `json:"certificate_id"`
	CertificateNumber string `json:"certificate_number"`
	VerificationCode  string `json:"verification_code"`
	IssueDate         string `json:"issue_date"`
	Message           string `json:"message"`
}

type CertificateIdReq struct {
	CertificateId int64 `json:"certificate_id"`
}
