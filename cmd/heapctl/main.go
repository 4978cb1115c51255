// Command heapctl drives a heapkit allocator from the command line,
// persisting its heap to a file so allocate/free/realloc calls can be
// composed across separate invocations, Unix-tool style.
package main

func main() {
	execute()
}
