// Command raytrace renders scenes with the octree ray tracer, either
// to a static image file or to a live GLFW/terminal preview.
package main

func main() {
	Execute()
}
