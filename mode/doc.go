/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package mode provides the runtime-mode flag that gates development-time
// contract assertions in the normalizer.
//
// The flag distinguishes "production-like" runs from everything else. In
// production mode the 422 producer-contract checks are relaxed so that live
// traffic never crashes on a malformed producer call; in every other mode the
// checks panic loudly so the bug is found during development.
//
// The canonical source of the flag is the APP_ENV environment variable
// (see FromEnv), but the type also implements encoding.TextUnmarshaler so it
// can be decoded by envconfig-style configuration structs.
package mode
