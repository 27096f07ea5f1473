// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ccwrap/ccwrap/internal/meta"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `# bash completion for ccwrap
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_ccwrap()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "cache key probe resolve run completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}

    case "$cmd" in
    cache)
        local opts="stats purge --hours -H"
        ;;
    key)
        local opts="--output -o"
        ;;
    completion)
        local opts="bash zsh"
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
        ;;
    *)
        local opts=""
        ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "json yaml" -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Otherwise complete files (compiler binaries, response files...).
    COMPREPLY=( $(compgen -o default -- "$cur") )
    return 0
}

complete -F _ccwrap ccwrap
`

const zshCompletionScript = `#compdef ccwrap

_ccwrap() {
  local -a cmds
  cmds=(
    'cache:inspect and maintain the local artifact cache'
    'key:compute the cache key manifest for an invocation'
    'probe:print the toolchain identity string'
    'resolve:expand response files and print resolved arguments'
    'run:run a toolchain invocation through the cache'
    'completion:generate shell completion script'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'ccwrap commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    cache)
      _arguments -C \
        '1:action:(stats purge)' \
        '(-H --hours)'{-H,--hours}'[age cutoff in hours]:hours'
      ;;
    key)
      _arguments -C \
        '(-o --output)'{-o,--output}'[output format]:format:(json yaml)' \
        '*::compiler argv:_files'
      ;;
    completion)
      _arguments '1:shell:(bash zsh)'
      ;;
    *)
      _files
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _ccwrap ccwrap
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(os.Stdout, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(os.Stdout, bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: ccwrap completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "ccwrap completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
