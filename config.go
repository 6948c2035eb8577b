// Copyright © 2020 Xavier Basty <xavier@hexbee.net>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"time"
)

type Config struct {
	Port                int           // Port for the http server to listen on.
	MetricsPort         int           // Port for the Prometheus metrics listener. 0 disables it.
	ConfigFile          string        // YAML or JSON file read on every request. Empty disables the file store.
	RedisAddr           string        // Redis server holding the settings. Empty disables the redis store.
	RedisPrefix         string        // Prefix prepended to keys looked up in redis.
	SSMPrefix           string        // SSM Parameter Store path prefix. Empty disables the ssm store.
	AWSRegion           string        // Region used by the ssm store.
	EnvPrefix           string        // Prefix prepended to keys looked up in the environment.
	NoEnv               bool          // Do not read settings from the environment.
	Overrides           StaticStore   // Settings given on the command line. They win over every store.
	ThrottlingThreshold int           // Max number of calls authorized during the throttling period. 0 means not throttling.
	ThrottlingPeriod    time.Duration // Duration of the throttling period.
	RealClientAddress   bool          // Report the peer address in client_address instead of "unknown".
	Trace               bool          // Export a span per request to stdout.
	StatsdAddr          string        // StatsD server receiving request metrics. Empty disables statsd.
}
