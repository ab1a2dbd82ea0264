// Package sched turns parsed timestamps into real waits. The waiter
// blocks against an absolute wall-clock deadline, retrying transparently
// when a signal interrupts the sleep; targets already in the past return
// immediately. The offset calculator derives the alignment correction
// between recorded time and real time, using the same borrow arithmetic
// as the sleep deltas.
package sched
