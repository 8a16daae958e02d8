// Package resolver turns scanned presentation metadata into runnable options
// for one action, and formats the label and identity key the selector shows.
//
// Resolution priority for a record and action:
//  1. manifest name present and a script named exactly like the action → workspace run
//  2. slides file present → direct slides run
//  3. otherwise the record yields no option for that action
//
// All functions are pure.
package resolver
