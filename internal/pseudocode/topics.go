// Package pseudocode holds the static reference library of data
// structures and algorithms browsable outside of quiz sessions.
package pseudocode

// Kind classifies a topic.
type Kind string

const (
	KindDataStructure Kind = "Data Structure"
	KindAlgorithm     Kind = "Algorithm"
)

// Topic is one browsable reference card.
type Topic struct {
	Title string
	Kind  Kind
	Code  string
}

var topics = []Topic{
	{
		Title: "Array",
		Kind:  KindDataStructure,
		Code: `// Access element at index i
FUNCTION getElement(array, i)
  RETURN array[i]

// Set element at index i
FUNCTION setElement(array, i, value)
  array[i] = value`,
	},
	{
		Title: "Linked List",
		Kind:  KindDataStructure,
		Code: `// Node structure
NODE { data, next }

// Add node to end
FUNCTION addNode(head, newData)
  newNode = NEW NODE(newData, null)
  IF head IS null THEN
    head = newNode
  ELSE
    current = head
    WHILE current.next IS NOT null
      current = current.next
    current.next = newNode
  RETURN head`,
	},
	{
		Title: "Stack",
		Kind:  KindDataStructure,
		Code: `// Push item onto stack
FUNCTION push(stack, item)
  ADD item TO TOP of stack

// Pop item from stack
FUNCTION pop(stack)
  IF stack IS EMPTY THEN ERROR
  REMOVE item FROM TOP of stack
  RETURN item

// Peek top item
FUNCTION peek(stack)
  IF stack IS EMPTY THEN ERROR
  RETURN item AT TOP of stack`,
	},
	{
		Title: "Queue",
		Kind:  KindDataStructure,
		Code: `// Enqueue item
FUNCTION enqueue(queue, item)
  ADD item TO END of queue

// Dequeue item
FUNCTION dequeue(queue)
  IF queue IS EMPTY THEN ERROR
  REMOVE item FROM FRONT of queue
  RETURN item

// Peek front item
FUNCTION peek(queue)
  IF queue IS EMPTY THEN ERROR
  RETURN item AT FRONT of queue`,
	},
	{
		Title: "Binary Search Tree",
		Kind:  KindDataStructure,
		Code: `// Node structure
NODE { key, value, left, right }

// Insert node
FUNCTION insert(node, key, value)
  IF node IS null THEN RETURN NEW NODE(key, value)
  IF key < node.key THEN
    node.left = insert(node.left, key, value)
  ELSE IF key > node.key THEN
    node.right = insert(node.right, key, value)
  ELSE
    node.value = value // Update existing
  RETURN node`,
	},
	{
		Title: "Graph",
		Kind:  KindDataStructure,
		Code: `// Adjacency List Representation
GRAPH { vertices: MAP<VERTEX, LIST<EDGE>> }

// Breadth-First Search (BFS)
FUNCTION BFS(graph, startVertex)
  queue = NEW QUEUE()
  visited = NEW SET()
  ADD startVertex TO queue
  ADD startVertex TO visited
  WHILE queue IS NOT EMPTY
    vertex = queue.dequeue()
    PROCESS vertex
    FOR EACH neighbor OF vertex
      IF neighbor IS NOT IN visited THEN
        ADD neighbor TO visited
        ADD neighbor TO queue`,
	},
	{
		Title: "Bubble Sort",
		Kind:  KindAlgorithm,
		Code: `FUNCTION bubbleSort(array)
  n = LENGTH of array
  REPEAT n-1 TIMES
    swapped = false
    FOR i FROM 0 TO n-2
      IF array[i] > array[i+1] THEN
        SWAP array[i] AND array[i+1]
        swapped = true
    IF NOT swapped THEN BREAK
  RETURN array`,
	},
	{
		Title: "Merge Sort",
		Kind:  KindAlgorithm,
		Code: `FUNCTION mergeSort(array)
  IF LENGTH of array <= 1 THEN RETURN array
  mid = FLOOR(LENGTH of array / 2)
  left = mergeSort(SUBARRAY from 0 to mid-1)
  right = mergeSort(SUBARRAY from mid to end)
  RETURN merge(left, right)

FUNCTION merge(left, right)
  result = NEW ARRAY()
  WHILE left IS NOT EMPTY AND right IS NOT EMPTY
    IF left[0] <= right[0] THEN
      ADD left.removeFirst() TO result
    ELSE
      ADD right.removeFirst() TO result
  ADD remaining elements OF left TO result
  ADD remaining elements OF right TO result
  RETURN result`,
	},
	{
		Title: "Quick Sort",
		Kind:  KindAlgorithm,
		Code: `FUNCTION quickSort(array, low, high)
  IF low < high THEN
    pivotIndex = partition(array, low, high)
    quickSort(array, low, pivotIndex - 1)
    quickSort(array, pivotIndex + 1, high)

FUNCTION partition(array, low, high)
  pivot = array[high]
  i = low - 1
  FOR j FROM low TO high - 1
    IF array[j] < pivot THEN
      i = i + 1
      SWAP array[i] AND array[j]
  SWAP array[i+1] AND array[high]
  RETURN i + 1`,
	},
	{
		Title: "Linear Search",
		Kind:  KindAlgorithm,
		Code: `FUNCTION linearSearch(array, target)
  FOR i FROM 0 TO LENGTH of array - 1
    IF array[i] == target THEN
      RETURN i // Found at index i
  RETURN -1 // Not found`,
	},
	{
		Title: "Binary Search",
		Kind:  KindAlgorithm,
		Code: `// Requires sorted array
FUNCTION binarySearch(sortedArray, target)
  low = 0
  high = LENGTH of sortedArray - 1
  WHILE low <= high
    mid = FLOOR((low + high) / 2)
    IF sortedArray[mid] == target THEN
      RETURN mid // Found at index mid
    ELSE IF sortedArray[mid] < target THEN
      low = mid + 1
    ELSE
      high = mid - 1
  RETURN -1 // Not found`,
	},
	{
		Title: "Dijkstra's Algorithm",
		Kind:  KindAlgorithm,
		Code: `FUNCTION dijkstra(graph, startNode)
  distances = MAP // Store shortest distance found so far for each node
  priorityQueue = NEW PRIORITY QUEUE // Stores {node, distance}
  SET all distances to INFINITY, except startNode to 0
  ADD {startNode, 0} TO priorityQueue

  WHILE priorityQueue IS NOT EMPTY
    {currentNode, currentDistance} = priorityQueue.extractMin()
    IF currentDistance > distances[currentNode] THEN CONTINUE

    FOR EACH neighbor, weight OF currentNode
      distance = currentDistance + weight
      IF distance < distances[neighbor] THEN
        distances[neighbor] = distance
        ADD {neighbor, distance} TO priorityQueue
  RETURN distances`,
	},
	{
		Title: "A* Search",
		Kind:  KindAlgorithm,
		Code: `FUNCTION aStarSearch(graph, startNode, goalNode, heuristic)
  openSet = NEW PRIORITY QUEUE // Nodes to visit {node, fScore}
  cameFrom = MAP // Path reconstruction
  gScore = MAP // Cost from start to node (Default: Infinity)
  fScore = MAP // Estimated total cost (gScore + heuristic) (Default: Infinity)

  gScore[startNode] = 0
  fScore[startNode] = heuristic(startNode, goalNode)
  ADD {startNode, fScore[startNode]} TO openSet

  WHILE openSet IS NOT EMPTY
    {currentNode, currentFScore} = openSet.extractMin()
    IF currentNode == goalNode THEN RETURN reconstructPath(cameFrom, currentNode)

    FOR EACH neighbor, weight OF currentNode
      tentativeGScore = gScore[currentNode] + weight
      IF tentativeGScore < gScore[neighbor] THEN // Found a better path
        cameFrom[neighbor] = currentNode
        gScore[neighbor] = tentativeGScore
        fScore[neighbor] = tentativeGScore + heuristic(neighbor, goalNode)
        IF neighbor IS NOT IN openSet THEN
          ADD {neighbor, fScore[neighbor]} TO openSet
  RETURN FAILURE // No path found`,
	},
}

// List returns all topics in display order, data structures first.
func List() []Topic {
	out := make([]Topic, len(topics))
	copy(out, topics)
	return out
}

// Get looks a topic up by title.
func Get(title string) (Topic, bool) {
	for _, t := range topics {
		if t.Title == title {
			return t, true
		}
	}
	return Topic{}, false
}
