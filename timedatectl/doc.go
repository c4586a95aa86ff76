/*
Copyright (c) Facebook, Inc. and its affiliates.

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

/*
Package timedatectl reconciles system clock settings (NTP sync, local time, timezone)
with desired values by driving the `timedatectl` tool.

It reads `timedatectl status`, compares every requested field against what the tool reports,
issues `timedatectl set-<field> <value>` only for the fields that differ, and returns a
ChangeReport describing the value of each requested field before and after.
*/
package timedatectl
