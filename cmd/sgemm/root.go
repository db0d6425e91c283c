// Copyright 2025 go-highway Authors
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
	"strings"

	"github.com/ajroetker/go-sgemm/hwy/contrib/matmul"
	"github.com/ajroetker/go-sgemm/hwy/contrib/workerpool"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// engineFlags holds the flags shared by every subcommand.
type engineFlags struct {
	logLevel string
	workers  int
	kernel   string
	pool     bool
}

func (f *engineFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	fs.IntVar(&f.workers, "workers", 0, "worker goroutines per multiplication (0: SGEMM_WORKERS or NumCPU)")
	fs.StringVar(&f.kernel, "kernel", "", "fast-path kernel ("+kernelNames()+"); empty selects by dispatch level")
	fs.BoolVar(&f.pool, "pool", false, "reuse a persistent worker pool across multiplications")
}

func kernelNames() string {
	names := lo.Map(matmul.Kernels(), func(k *matmul.Kernel, _ int) string { return k.Name() })
	return strings.Join(names, ",")
}

// env is what a subcommand runs with. close releases the worker pool, if any.
type env struct {
	logger *zap.Logger
	engine *matmul.Engine
	close  func()
}

func (f *engineFlags) newLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(f.logLevel)
	if err != nil {
		return nil, errors.Wrap(err, "--log-level")
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

func (f *engineFlags) newEnv() (*env, error) {
	logger, err := f.newLogger()
	if err != nil {
		return nil, err
	}

	opts := []matmul.Option{matmul.WithLogger(logger)}
	if f.kernel != "" {
		k, ok := matmul.KernelByName(f.kernel)
		if !ok {
			return nil, errors.Newf("unknown kernel %q, want one of %s", f.kernel, kernelNames())
		}
		opts = append(opts, matmul.WithKernel(k))
	}

	closeFn := func() { _ = logger.Sync() }
	if f.pool {
		pool := workerpool.New(f.workers)
		opts = append(opts, matmul.WithRunner(pool))
		closeFn = func() {
			pool.Close()
			_ = logger.Sync()
		}
	} else {
		opts = append(opts, matmul.WithWorkers(f.workers))
	}

	engine, err := matmul.New(opts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("engine ready",
		zap.Stringer("kernel", engine.Kernel()),
		zap.Int("workers", engine.NumWorkers()),
		zap.Bool("pool", f.pool),
	)
	return &env{logger: logger, engine: engine, close: closeFn}, nil
}

// runWithEnv adapts a subcommand body to cobra's RunE.
func runWithEnv(f *engineFlags, fn func(cmd *cobra.Command, e *env) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		e, err := f.newEnv()
		if err != nil {
			return err
		}
		defer e.close()
		return fn(cmd, e)
	}
}

func newRootCmd() *cobra.Command {
	flags := &engineFlags{}
	root := &cobra.Command{
		Use:           "sgemm",
		Short:         "single-precision matrix multiplication driver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.register(root.PersistentFlags())

	root.AddCommand(
		newInfoCmd(flags),
		newCheckCmd(flags),
		newBenchCmd(flags),
		newNNCmd(flags),
	)
	return root
}
