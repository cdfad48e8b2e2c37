// Copyright 2017-26 the original author or authors.
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

// Command osmshape shapes OpenStreetMap extracts into address documents.
package main

import (
	"context"
	"os"
	"os/signal"

	"m4o.io/osmshape/cmd/osmshape/cli"

	_ "m4o.io/osmshape/cmd/osmshape/auditcmd"
	_ "m4o.io/osmshape/cmd/osmshape/censuscmd"
	_ "m4o.io/osmshape/cmd/osmshape/shapecmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.RootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
