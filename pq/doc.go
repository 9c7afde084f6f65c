// Package pq implements a mutable-key min-priority queue over vertex ids, the
// shared building block behind the heap-based densest-subgraph strategies
// (Charikar-Heap, Greedy++-Heap).
//
// It follows the same lazy decrease-key idiom the teacher's dijkstra package
// uses for its own priority queue: rather than relocating heap entries in
// place, DecreaseKey pushes a fresh, cheaper entry and leaves the stale one
// in the heap; ExtractMin loops, discarding any popped entry whose key no
// longer matches the vertex's current key or whose vertex has already been
// extracted. This keeps Insert O(log n) amortised and DecreaseKey O(log n)
// worst case (O(1) amortised under the usual potential-function argument),
// satisfying the Fibonacci-heap-shaped contract densest-subgraph peeling
// needs without a real Fibonacci heap's bookkeeping.
package pq
