// mcp.go exposes the service over MCP (stdio) so an agent can submit and
// inspect tasks with the same semantics as the HTTP surface. Enabled with
// the -mcp flag instead of the HTTP listener.
package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverVersion = "0.1.0"

// runMCP registers the tools and serves MCP on stdin/stdout until the
// client disconnects or ctx is cancelled.
func runMCP(ctx context.Context, service *Service, runner *Runner) error {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "boomerang",
		Version: serverVersion,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "submit_task",
		Description: "Submit a typed task for background processing. Returns the task ID immediately; poll check_tasks for progress.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args SubmitTaskArgs) (*mcp.CallToolResult, SubmitTaskOutput, error) {
		task, err := service.Submit(args.TaskType, args.InputText)
		if err != nil {
			return nil, SubmitTaskOutput{}, err
		}
		runner.Enqueue(task.ID)
		return nil, SubmitTaskOutput{TaskID: task.ID, Status: string(task.Status)}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_tasks",
		Description: "Poll task statuses with aggregate counts. No result content; use get_result for that.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args CheckTasksArgs) (*mcp.CallToolResult, CheckTasksOutput, error) {
		tasks, err := service.List()
		if err != nil {
			return nil, CheckTasksOutput{}, err
		}
		return nil, summarize(tasks, args.TaskIDs), nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_result",
		Description: "Retrieve the full result or error text for specific tasks.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args GetResultArgs) (*mcp.CallToolResult, GetResultOutput, error) {
		return nil, GetResultOutput{Results: resultViews(service.store, args.TaskIDs)}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tasks",
		Description: "List every task with its status, in insertion order.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ListTasksArgs) (*mcp.CallToolResult, ListTasksOutput, error) {
		tasks, err := service.List()
		if err != nil {
			return nil, ListTasksOutput{}, err
		}
		return nil, ListTasksOutput{Tasks: summarize(tasks, nil).Tasks}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "task_types",
		Description: "List the registered processor type names.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TaskTypesArgs) (*mcp.CallToolResult, TaskTypesOutput, error) {
		return nil, TaskTypesOutput{TaskTypes: service.Types()}, nil
	})

	return server.Run(ctx, &mcp.StdioTransport{})
}
