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

package errs

var (
	SystemError        = ErrorCode{Code: 401001, Msg: "系统错误"}
	InvalidInput       = ErrorCode{Code: 401002, Msg: "输入错误"}
	UserDuplicate      = ErrorCode{Code: 401003, Msg: "User already exists"}
	InvalidCredentials = ErrorCode{Code: 401004, Msg: "Invalid credentials"}
	NotImplemented     = ErrorCode{Code: 401005, Msg: "Password reset not implemented yet"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
