/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package service

// PageParams are the pagination query parameters shared by every paginated
// endpoint. Binding rejects out-of-range values before business logic runs.
type PageParams struct {
	Page      int  `form:"page,default=1" json:"page" binding:"min=1"`
	Size      int  `form:"size,default=10" json:"size" binding:"min=1,max=100"`
	Ascending bool `form:"ascending,default=true" json:"ascending"`
}
