// Package core holds the pieces every block processor in this module shares:
// the fixed block geometry ([BlockSettings]), the [Processor] contract,
// construction error sentinels and small numeric helpers such as
// [MapRangeClamped].
package core
