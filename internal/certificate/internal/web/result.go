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

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hug/internal/certificate/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	courseNotCompletedResult = ginx.Result{
		Code: errs.CourseNotCompleted.Code,
		Msg:  errs.CourseNotCompleted.Msg,
	}
	certificateExistsResult = ginx.Result{
		Code: errs.CertificateExists.Code,
		Msg:  errs.CertificateExists.Msg,
	}
	courseNotFoundResult = ginx.Result{
		Code: errs.CourseNotFound.Code,
		Msg:  errs.CourseNotFound.Msg,
	}
	certificateNotFoundResult = ginx.Result{
		Code: errs.CertificateNotFound.Code,
		Msg:  errs.CertificateNotFound.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
)
