// Package dispatch runs the hooks of a base directory one after another.
//
// Dispatch is strictly sequential. Before each hook the captured standard
// input is rewound, so every hook reads the complete input from offset
// zero no matter how much earlier hooks consumed. The dispatcher blocks on
// the running hook and on nothing else; there is no timeout and no
// cancellation.
//
// Outcome handling:
//   - Exit 0 → continue with the next hook
//   - Exit n ≠ 0 → stop; the dispatcher exits with n (HookFailedError)
//   - Could not spawn → diagnostic naming the hook, then as exit 127
//   - Killed by a signal → stop; fatal error (HookSignaledError)
//   - Rewind or wait failure → stop; fatal error
//
// Hooks after the first failure never run, and failures are never
// aggregated: the first failing hook behaves exactly as if it were the only
// hook installed in the slot.
package dispatch
